package web

// dashboardPage is the single-file dashboard served at /. It talks to the
// JSON API and needs no build step.
var dashboardPage = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>yt-clipper</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.4rem; }
  input, select, button { font-size: 1rem; padding: 0.4rem 0.6rem; }
  input[type=text] { width: 100%; box-sizing: border-box; }
  .row { display: flex; gap: 0.6rem; margin: 0.6rem 0; align-items: center; flex-wrap: wrap; }
  .row label { white-space: nowrap; }
  button { cursor: pointer; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { text-align: left; padding: 0.35rem 0.6rem; border-bottom: 1px solid #ddd; font-size: 0.92rem; }
  .error { color: #b00020; }
  .muted { color: #777; }
  #meta { margin: 0.8rem 0; }
</style>
</head>
<body>
<h1>yt-clipper</h1>

<div class="row">
  <input type="text" id="url" placeholder="https://www.youtube.com/watch?v=...">
  <button id="fetch">Fetch info</button>
</div>

<div id="meta" class="muted"></div>

<div class="row">
  <label for="format">Format</label>
  <select id="format"><option value="">Best quality</option></select>
  <label><input type="checkbox" id="audio"> Audio only (MP3)</label>
  <label for="start">Start</label>
  <input type="text" id="start" size="8" placeholder="0:30">
  <label for="end">End</label>
  <input type="text" id="end" size="8" placeholder="1:45">
  <button id="download">Download</button>
</div>

<div id="error" class="error"></div>

<table>
  <thead><tr><th>Title</th><th>Status</th><th>Progress</th><th>Speed</th><th>ETA</th></tr></thead>
  <tbody id="tasks"></tbody>
</table>

<script>
const el = id => document.getElementById(id);

async function api(path, opts) {
  const res = await fetch('/api/v1' + path, opts);
  const body = await res.json();
  if (!res.ok) throw new Error(body.error || res.statusText);
  return body;
}

el('fetch').onclick = async () => {
  el('error').textContent = '';
  try {
    const info = await api('/info', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: el('url').value})
    });
    el('meta').textContent = info.title + ' · ' + info.uploader + ' · ' + info.duration_display;
    const sel = el('format');
    sel.innerHTML = '<option value="">Best quality</option>';
    for (const f of info.formats) {
      const opt = document.createElement('option');
      opt.value = f.resolution;
      opt.textContent = f.resolution + ' · ' + f.ext + ' · ' + f.display_size + ' · ' + f.display_fps + ' fps';
      sel.appendChild(opt);
    }
  } catch (err) {
    el('error').textContent = err.message;
  }
};

el('download').onclick = async () => {
  el('error').textContent = '';
  try {
    await api('/download', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({
        url: el('url').value,
        resolution: el('format').value,
        audio_only: el('audio').checked,
        start: el('start').value,
        end: el('end').value
      })
    });
    refresh();
  } catch (err) {
    el('error').textContent = err.message;
  }
};

async function refresh() {
  try {
    const body = await api('/tasks');
    const rows = body.tasks.map(t =>
      '<tr><td>' + t.title + '</td><td>' + t.status + '</td><td>' + t.percent +
      '%</td><td>' + (t.speed || '') + '</td><td>' + t.eta + '</td></tr>');
    el('tasks').innerHTML = rows.join('');
  } catch (err) { /* transient; retried on the next tick */ }
}

setInterval(refresh, 1000);
refresh();
</script>
</body>
</html>
`)
